package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
)

const (
	maxCountOfResults int64 = 5000
)

// --------------- trust line --------------------------------

// AddTrustLine add a new trust line document
func AddTrustLine(ml *MgoTrustLine) error {
	_, err := collTrustLine.InsertOne(clientCtx, ml)
	if err == nil {
		log.Info("[mongodb] add trust line", "low", ml.Key.Low, "high", ml.Key.High, "seq", ml.Seq)
	}
	return mgoError(err)
}

// FindTrustLine find the trust line of a canonical pair
func FindTrustLine(low, high string) (*MgoTrustLine, error) {
	var result MgoTrustLine
	err := collTrustLine.FindOne(clientCtx, bson.M{"_id": PairKey{Low: low, High: high}}).Decode(&result)
	if err != nil {
		return nil, mgoError(err)
	}
	return &result, nil
}

// ReplaceTrustLine overwrite the stored trust line of ml's pair
func ReplaceTrustLine(ml *MgoTrustLine) error {
	res, err := collTrustLine.ReplaceOne(clientCtx, bson.M{"_id": ml.Key}, ml)
	if err == nil && res.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return mgoError(err)
}

// BalanceWrite is one line's new balance inside a bulk balance commit
type BalanceWrite struct {
	Key        PairKey
	NewBalance int64
	UpdatedAt  int64
}

// ApplyBalanceWrites commit several lines' balances in one ordered bulk
// write, used by the rippling commit. All lines are pre validated, a
// write matching no document is a storage fault.
func ApplyBalanceWrites(writes []BalanceWrite) error {
	if len(writes) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, len(writes))
	for i, w := range writes {
		models[i] = mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": w.Key}).
			SetUpdate(bson.M{"$set": bson.M{"balance": w.NewBalance, "updatedat": w.UpdatedAt}})
	}
	res, err := collTrustLine.BulkWrite(clientCtx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return mgoError(err)
	}
	if res.MatchedCount != int64(len(writes)) {
		log.Error("[mongodb] balance bulk write matched wrong count", "want", len(writes), "have", res.MatchedCount)
		return ErrItemNotFound
	}
	return nil
}

// FindTrustLineCount count all trust line documents
func FindTrustLineCount() (uint64, error) {
	count, err := collTrustLine.CountDocuments(clientCtx, bson.M{})
	if err != nil {
		return 0, mgoError(err)
	}
	return uint64(count), nil
}

// FindTrustLinesByAccount find every line one account participates in
func FindTrustLinesByAccount(account string, limit int64) ([]*MgoTrustLine, error) {
	if limit <= 0 || limit > maxCountOfResults {
		limit = maxCountOfResults
	}
	filter := bson.M{"$or": bson.A{
		bson.M{"_id.low": account},
		bson.M{"_id.high": account},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}).SetLimit(limit)
	cur, err := collTrustLine.Find(clientCtx, filter, opts)
	if err != nil {
		return nil, mgoError(err)
	}
	defer func() { _ = cur.Close(clientCtx) }()
	result := make([]*MgoTrustLine, 0, 16)
	for cur.Next(clientCtx) {
		var ml MgoTrustLine
		if err := cur.Decode(&ml); err != nil {
			return nil, mgoError(err)
		}
		result = append(result, &ml)
	}
	return result, mgoError(cur.Err())
}

// IterateTrustLines call fn on every stored trust line until fn
// returns false or the cursor is exhausted
func IterateTrustLines(fn func(*MgoTrustLine) bool) error {
	cur, err := collTrustLine.Find(clientCtx, bson.M{})
	if err != nil {
		return mgoError(err)
	}
	defer func() { _ = cur.Close(clientCtx) }()
	for cur.Next(clientCtx) {
		var ml MgoTrustLine
		if err := cur.Decode(&ml); err != nil {
			return mgoError(err)
		}
		if !fn(&ml) {
			break
		}
	}
	return mgoError(cur.Err())
}

// --------------- operation history --------------------------------

// AddLineOp add one applied operation record. The record key is the
// digest of its content, re adding the same record is a noop.
func AddLineOp(mo *MgoLineOp) error {
	_, err := collLineOp.InsertOne(clientCtx, mo)
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return mgoError(err)
}

// FindLineOps find operation history of an account, newest first
func FindLineOps(account string, offset, limit int64) ([]*MgoLineOp, error) {
	if limit <= 0 || limit > maxCountOfResults {
		limit = maxCountOfResults
	}
	filter := bson.M{}
	if account != "" {
		filter["accounts"] = account
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "eventseq", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)
	cur, err := collLineOp.Find(clientCtx, filter, opts)
	if err != nil {
		return nil, mgoError(err)
	}
	defer func() { _ = cur.Close(clientCtx) }()
	result := make([]*MgoLineOp, 0, 16)
	for cur.Next(clientCtx) {
		var mo MgoLineOp
		if err := cur.Decode(&mo); err != nil {
			return nil, mgoError(err)
		}
		result = append(result, &mo)
	}
	return result, mgoError(cur.Err())
}

// --------------- server status --------------------------------

// InitServerStatus upsert the global status document at startup
func InitServerStatus(identifier string) error {
	update := bson.M{
		"$set":         bson.M{"identifier": identifier, "timestamp": common.Now()},
		"$setOnInsert": bson.M{"creationseq": uint64(0)},
	}
	opts := options.Update().SetUpsert(true)
	_, err := collServerStatus.UpdateOne(clientCtx, bson.M{"_id": keyOfServerStatus}, update, opts)
	return mgoError(err)
}

// FindServerStatus find the global status document
func FindServerStatus() (*MgoServerStatus, error) {
	var result MgoServerStatus
	err := collServerStatus.FindOne(clientCtx, bson.M{"_id": keyOfServerStatus}).Decode(&result)
	if err != nil {
		return nil, mgoError(err)
	}
	return &result, nil
}

// NextCreationSeq increment the global trust line creation counter and
// return the incremented value
func NextCreationSeq() (uint64, error) {
	update := bson.M{
		"$inc": bson.M{"creationseq": int64(1)},
		"$set": bson.M{"timestamp": common.Now()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var result MgoServerStatus
	err := collServerStatus.FindOneAndUpdate(clientCtx, bson.M{"_id": keyOfServerStatus}, update, opts).Decode(&result)
	if err != nil {
		return 0, mgoError(err)
	}
	return result.CreationSeq, nil
}

// CurrentCreationSeq return the creation counter without incrementing
func CurrentCreationSeq() (uint64, error) {
	status, err := FindServerStatus()
	if err != nil {
		return 0, err
	}
	return status.CreationSeq, nil
}
