package rpcapi

import (
	"net/http"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/internal/trustapi"
)

// AdminCall admin call
func (s *RPCAPI) AdminCall(r *http.Request, rawCall, result *string) (err error) {
	*result, err = trustapi.AdminCall(*rawCall)
	return err
}
