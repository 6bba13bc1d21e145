package common

import (
	"errors"
	"strconv"
	"time"

	"golang.org/x/crypto/sha3"
)

// Keccak256Hash calc keccak256 hash of concated data
func Keccak256Hash(data ...[]byte) (h Hash) {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}

// GetInt64FromStr get int64 from string
func GetInt64FromStr(str string) (int64, error) {
	res, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, errors.New("invalid signed 64 bit integer: " + str)
	}
	return res, nil
}

// GetUint64FromStr get uint64 from string
func GetUint64FromStr(str string) (uint64, error) {
	res, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0, errors.New("invalid unsigned 64 bit integer: " + str)
	}
	return res, nil
}

// GetUint32FromStr get uint32 from string
func GetUint32FromStr(str string) (uint32, error) {
	res, err := strconv.ParseUint(str, 10, 32)
	if err != nil {
		return 0, errors.New("invalid unsigned 32 bit integer: " + str)
	}
	return uint32(res), nil
}

// GetBoolFromStr get bool from string, accepts only true/false and 1/0
func GetBoolFromStr(str string) (bool, error) {
	switch str {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, errors.New("invalid bool value: " + str)
}

// Now returns the current unix timestamp in seconds
func Now() int64 {
	return time.Now().Unix()
}

// NowStr returns the current unix timestamp string in seconds
func NowStr() string {
	return strconv.FormatInt(time.Now().Unix(), 10)
}

// NowMilli returns the current unix timestamp in milli seconds
func NowMilli() int64 {
	return time.Now().UnixNano() / 1e6
}

// NowMilliStr returns the current unix timestamp string in milli seconds
func NowMilliStr() string {
	return strconv.FormatInt(time.Now().UnixNano()/1e6, 10)
}
