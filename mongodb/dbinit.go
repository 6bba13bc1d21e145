package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
)

var (
	client    *mongo.Client
	clientCtx = context.Background()

	databaseName   string
	connectionURL  string
	appIdentifier  string
	dialAttemptGap = 1 * time.Second
)

// HasClient has mongodb client connected
func HasClient() bool {
	return client != nil
}

// MongoServerInit init mongodb server connection and the collections
func MongoServerInit(appName, url, dbName string) {
	appIdentifier = appName
	connectionURL = url
	databaseName = dbName
	mongoConnect()
	initCollections()
	go checkMongoConnection()
}

func mongoConnect() {
	if client != nil { // when reconnect
		_ = client.Disconnect(clientCtx)
	}
	log.Info("[mongodb] connect database start.", "url", connectionURL, "dbName", databaseName)
	clientOpts := options.Client().
		ApplyURI("mongodb://" + connectionURL).
		SetAppName(appIdentifier).
		SetConnectTimeout(10 * time.Second)
	for {
		var err error
		client, err = mongo.Connect(clientCtx, clientOpts)
		if err == nil {
			err = client.Ping(clientCtx, readpref.Primary())
		}
		if err == nil {
			break
		}
		log.Warn("[mongodb] dial error", "err", err)
		time.Sleep(dialAttemptGap)
	}
	log.Info("[mongodb] connect database finished.", "dbName", databaseName)
}

func checkMongoConnection() {
	for {
		time.Sleep(60 * time.Second)
		if err := ensureMongoConnected(); err != nil {
			log.Info("[mongodb] check connection error", "err", err)
			log.Info("[mongodb] reconnect database", "dbName", databaseName)
			mongoConnect()
			initCollections()
		}
	}
}

func connectionPing() (err error) {
	for i := 0; i < 6; i++ {
		pingCtx, cancel := context.WithTimeout(clientCtx, 10*time.Second)
		err = client.Ping(pingCtx, readpref.Primary())
		cancel()
		if err == nil {
			break
		}
		time.Sleep(10 * time.Second)
	}
	return err
}

func ensureMongoConnected() (err error) {
	err = connectionPing()
	if err != nil {
		log.Error("[mongodb] connection ping error", "err", err)
	}
	return err
}
