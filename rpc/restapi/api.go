// Package restapi provides the REST handlers over the trust line api.
package restapi

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/internal/trustapi"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/params"
	"github.com/gorilla/mux"
)

const maxPostBodyLength = 1024 * 1024

func writeResponse(w http.ResponseWriter, resp interface{}, err error) {
	if err == nil {
		jsonData, _ := json.Marshal(resp)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(jsonData)
	} else {
		fmt.Fprintln(w, err.Error())
	}
}

// VersionInfoHandler handler
func VersionInfoHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	version := params.VersionWithMeta
	writeResponse(w, version, nil)
}

// ServerInfoHandler handler
func ServerInfoHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	res, err := trustapi.GetServerInfo()
	writeResponse(w, res, err)
}

// StatisticsHandler handler
func StatisticsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	res, err := trustapi.GetStatistics()
	writeResponse(w, res, err)
}

// GetTrustLineHandler handler
func GetTrustLineHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	res, err := trustapi.GetTrustLine(vars["account1"], vars["account2"])
	writeResponse(w, res, err)
}

// GetBalanceHandler handler
func GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	res, err := trustapi.GetBalance(vars["account1"], vars["account2"])
	writeResponse(w, res, err)
}

// GetAvailableCreditHandler handler
func GetAvailableCreditHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	res, err := trustapi.GetAvailableCredit(vars["account1"], vars["account2"])
	writeResponse(w, res, err)
}

func getQueryInt(vals url.Values, key string, defaultVal int) (int, error) {
	val, exist := vals[key]
	if !exist {
		return defaultVal, nil
	}
	num, err := common.GetInt64FromStr(val[0])
	if err != nil {
		return defaultVal, fmt.Errorf("wrong %v: %v", key, val[0])
	}
	return int(num), nil
}

// AccountTrustLinesHandler handler
func AccountTrustLinesHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	limit, err := getQueryInt(r.URL.Query(), "limit", 20)
	if err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := trustapi.GetAccountTrustLines(vars["account"], limit)
	writeResponse(w, res, err)
}

// HistoryHandler handler
func HistoryHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vals := r.URL.Query()
	w.WriteHeader(http.StatusOK)
	offset, err := getQueryInt(vals, "offset", 0)
	if err != nil {
		writeResponse(w, nil, err)
		return
	}
	limit, err := getQueryInt(vals, "limit", 20)
	if err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := trustapi.GetHistory(vars["account"], offset, limit)
	writeResponse(w, res, err)
}

// AssetsHandler handler
func AssetsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	res, err := trustapi.GetAssets()
	writeResponse(w, res, err)
}

// GetAssetHandler handler
func GetAssetHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.WriteHeader(http.StatusOK)
	res, err := trustapi.GetAsset(vars["assetid"])
	writeResponse(w, res, err)
}

func readRawCall(r *http.Request) (string, error) {
	defer func() { _ = r.Body.Close() }()
	body, err := ioutil.ReadAll(io.LimitReader(r.Body, maxPostBodyLength))
	if err != nil {
		return "", err
	}
	rawCall := strings.TrimSpace(string(body))
	if rawCall == "" {
		return "", fmt.Errorf("empty call data")
	}
	return rawCall, nil
}

// PostCallHandler handle signed call envelopes
func PostCallHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	rawCall, err := readRawCall(r)
	if err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := trustapi.SubmitCall(rawCall)
	writeResponse(w, res, err)
}

// PostAdminCallHandler handle signed admin envelopes
func PostAdminCallHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	rawCall, err := readRawCall(r)
	if err != nil {
		writeResponse(w, nil, err)
		return
	}
	res, err := trustapi.AdminCall(rawCall)
	writeResponse(w, res, err)
}
