// Package server provides the http api server. The json rpc service,
// the rest handlers and the websocket event feed share one router.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v6"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/rpc/v2"
	rpcjson "github.com/gorilla/rpc/v2/json2"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/params"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/rpc/restapi"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/rpc/rpcapi"
)

// StartAPIServer start api server
func StartAPIServer() {
	router := initRouter()

	apiPort := params.GetAPIPort()
	apiServer := params.GetServerConfig().APIServer
	allowedOrigins := apiServer.AllowedOrigins

	corsOptions := []handlers.CORSOption{
		handlers.AllowedMethods([]string{"GET", "POST"}),
	}
	if len(allowedOrigins) != 0 {
		corsOptions = append(corsOptions,
			handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type"}),
			handlers.AllowedOrigins(allowedOrigins),
		)
	}

	handler := http.Handler(handlers.CORS(corsOptions...)(router))
	if apiServer.MaxRequestsLimit > 0 {
		limiter := tollbooth.NewLimiter(float64(apiServer.MaxRequestsLimit), nil)
		handler = tollbooth.LimitHandler(limiter, handler)
	}

	go runWsHub()

	log.Info("JSON RPC service listen and serving", "port", apiPort, "allowedOrigins", allowedOrigins, "maxRequestsLimit", apiServer.MaxRequestsLimit)
	svr := http.Server{
		Addr:         fmt.Sprintf(":%v", apiPort),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		Handler:      handler,
	}
	go func() {
		if err := svr.ListenAndServe(); err != nil {
			log.Error("ListenAndServe error", "err", err)
		}
	}()
}

func initRouter() *mux.Router {
	r := mux.NewRouter()

	rpcserver := rpc.NewServer()
	rpcserver.RegisterCodec(rpcjson.NewCodec(), "application/json")
	_ = rpcserver.RegisterService(new(rpcapi.RPCAPI), "trust")

	r.Handle("/rpc", rpcserver)
	r.HandleFunc("/serverinfo", restapi.ServerInfoHandler).Methods("GET")
	r.HandleFunc("/versioninfo", restapi.VersionInfoHandler).Methods("GET")
	r.HandleFunc("/statistics", restapi.StatisticsHandler).Methods("GET")
	r.HandleFunc("/assets", restapi.AssetsHandler).Methods("GET")
	r.HandleFunc("/asset/{assetid}", restapi.GetAssetHandler).Methods("GET")
	r.HandleFunc("/trustline/{account1}/{account2}", restapi.GetTrustLineHandler).Methods("GET")
	r.HandleFunc("/balance/{account1}/{account2}", restapi.GetBalanceHandler).Methods("GET")
	r.HandleFunc("/credit/{account1}/{account2}", restapi.GetAvailableCreditHandler).Methods("GET")
	r.HandleFunc("/trustlines/{account}", restapi.AccountTrustLinesHandler).Methods("GET")
	r.HandleFunc("/history/{account}", restapi.HistoryHandler).Methods("GET")
	r.HandleFunc("/call", restapi.PostCallHandler).Methods("POST")
	r.HandleFunc("/admincall", restapi.PostAdminCallHandler).Methods("POST")
	r.HandleFunc("/ws", ServeWebsocket).Methods("GET")

	methodsExcludesGet := []string{"POST", "HEAD", "PUT", "DELETE", "CONNECT", "OPTIONS", "TRACE", "PATCH"}
	methodsExcludesPost := []string{"GET", "HEAD", "PUT", "DELETE", "CONNECT", "OPTIONS", "TRACE", "PATCH"}

	r.HandleFunc("/serverinfo", warnHandler).Methods(methodsExcludesGet...)
	r.HandleFunc("/versioninfo", warnHandler).Methods(methodsExcludesGet...)
	r.HandleFunc("/statistics", warnHandler).Methods(methodsExcludesGet...)
	r.HandleFunc("/assets", warnHandler).Methods(methodsExcludesGet...)
	r.HandleFunc("/asset/{assetid}", warnHandler).Methods(methodsExcludesGet...)
	r.HandleFunc("/trustline/{account1}/{account2}", warnHandler).Methods(methodsExcludesGet...)
	r.HandleFunc("/balance/{account1}/{account2}", warnHandler).Methods(methodsExcludesGet...)
	r.HandleFunc("/credit/{account1}/{account2}", warnHandler).Methods(methodsExcludesGet...)
	r.HandleFunc("/trustlines/{account}", warnHandler).Methods(methodsExcludesGet...)
	r.HandleFunc("/history/{account}", warnHandler).Methods(methodsExcludesGet...)
	r.HandleFunc("/call", warnHandler).Methods(methodsExcludesPost...)
	r.HandleFunc("/admincall", warnHandler).Methods(methodsExcludesPost...)

	return r
}

func warnHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "Forbid '%v' on '%v'\n", r.Method, r.RequestURI)
}
