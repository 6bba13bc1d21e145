package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
)

const (
	tbTrustLines   string = "TrustLines"
	tbLineOps      string = "LineOps"
	tbServerStatus string = "ServerStatus"

	keyOfServerStatus string = "status"
)

var (
	database *mongo.Database

	collTrustLine    *mongo.Collection
	collLineOp       *mongo.Collection
	collServerStatus *mongo.Collection
)

func initCollections() {
	database = client.Database(databaseName)

	initCollection(tbTrustLines, &collTrustLine, "_id.low")
	createOneIndex(collTrustLine, "_id.high")
	initCollection(tbLineOps, &collLineOp, "accounts", "timestamp")
	createOneIndex(collLineOp, "eventseq")
	initCollection(tbServerStatus, &collServerStatus)
}

func initCollection(table string, collection **mongo.Collection, indexKey ...string) {
	*collection = database.Collection(table)
	if len(indexKey) != 0 {
		createOneIndex(*collection, indexKey...)
	}
}

func createOneIndex(coll *mongo.Collection, indexes ...string) {
	keys := make(bson.D, len(indexes))
	for i, index := range indexes {
		keys[i] = bson.E{Key: index, Value: 1}
	}
	model := mongo.IndexModel{Keys: keys}
	_, err := coll.Indexes().CreateOne(clientCtx, model)
	if err != nil {
		log.Error("[mongodb] create indexes failed", "collection", coll.Name(), "indexes", indexes, "err", err)
	}
}
