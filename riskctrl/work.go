package riskctrl

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/mongodb"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/rpc/client"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/tools"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
	"github.com/go-resty/resty/v2"
)

const (
	appIdentifier = "trustaudit"

	auditInterval = 30 * time.Second
)

var (
	serverAPIAddress string
	maxSeqDriftValue uint64
)

// Work start trust line audit work
func Work() {
	log.Info("start trust line audit work")
	client.InitHTTPClient()
	initAuditor()

	exitCh := make(chan struct{})

	go audit()

	<-exitCh
}

func initAuditor() {
	config := GetConfig()
	if config.Email != nil {
		tools.InitEmailConfig(config.Email.Server, config.Email.Port, config.Email.From, config.Email.FromName, config.Email.Password)
	}
	mongodb.MongoServerInit(appIdentifier, config.MongoDB.GetURL(), config.MongoDB.DBName)
}

func audit() {
	config := GetConfig()

	serverAPIAddress = strings.TrimSuffix(config.ServerAPIAddress, "/")
	maxSeqDriftValue = config.MaxSeqDriftValue

	log.Info("start audit work",
		"serverAPIAddress", serverAPIAddress,
		"maxSeqDriftValue", maxSeqDriftValue,
	)

	for {
		auditOnce()
		time.Sleep(auditInterval)
	}
}

func auditOnce() {
	lineCount, maxSeq, violations := auditTrustLines()
	auditCreationSeq(lineCount, maxSeq)
	probeServer()

	if len(violations) == 0 {
		log.Info("[risk] normal trust lines", "lineCount", lineCount)
		return
	}
	log.Error("[risk] found trust line violations", "lineCount", lineCount, "violations", len(violations))
	subject := fmt.Sprintf("[risk] found %v trust line violations", len(violations))
	content := strings.Join(violations, "\n")
	_ = sendAuditEmail(subject, content)
}

func auditTrustLines() (lineCount, maxSeq uint64, violations []string) {
	err := mongodb.IterateTrustLines(func(ml *mongodb.MgoTrustLine) bool {
		lineCount++
		if ml.Seq > maxSeq {
			maxSeq = ml.Seq
		}
		for _, violation := range checkTrustLine(ml) {
			log.Error("[risk] " + violation)
			violations = append(violations, violation)
		}
		return true
	})
	if err != nil {
		log.Warn("scan trust lines failed", "err", err)
	}
	return lineCount, maxSeq, violations
}

func checkTrustLine(ml *mongodb.MgoTrustLine) (violations []string) {
	report := func(format string, args ...interface{}) {
		prefix := fmt.Sprintf("trust line %v %v: ", ml.Key.Low, ml.Key.High)
		violations = append(violations, prefix+fmt.Sprintf(format, args...))
	}

	low, errLow := trustlines.HexToAccountID(ml.Key.Low)
	high, errHigh := trustlines.HexToAccountID(ml.Key.High)
	switch {
	case errLow != nil:
		report("wrong low account: %v", errLow)
	case errHigh != nil:
		report("wrong high account: %v", errHigh)
	case !low.Less(high):
		report("account pair is not canonically ordered")
	}

	// frozen lines pin both limits at zero but keep the balance for
	// settlement, so the limit bound only applies to active lines
	frozen := ml.LowLimit == 0 && ml.HighLimit == 0
	switch {
	case ml.LowLimit < 0 || ml.HighLimit < 0:
		report("negative limit (low %v, high %v)", ml.LowLimit, ml.HighLimit)
	case frozen:
		if ml.AllowRippling {
			report("frozen but still allow rippling")
		}
	default:
		if ml.LowLimit == 0 || ml.HighLimit == 0 {
			report("only one side limit is zero (low %v, high %v)", ml.LowLimit, ml.HighLimit)
		}
		if ml.Balance > ml.LowLimit || ml.Balance < -ml.HighLimit {
			report("balance %v out of limits (low %v, high %v)", ml.Balance, ml.LowLimit, ml.HighLimit)
		}
	}

	if ml.QualityIn == 0 || ml.QualityIn > trustlines.QualityParity {
		report("wrong quality in %v", ml.QualityIn)
	}
	if ml.QualityOut == 0 || ml.QualityOut > trustlines.QualityParity {
		report("wrong quality out %v", ml.QualityOut)
	}
	if ml.Seq == 0 {
		report("zero creation seq")
	}
	return violations
}

func auditCreationSeq(lineCount, maxSeq uint64) {
	creationSeq, err := mongodb.CurrentCreationSeq()
	if err != nil {
		log.Warn("get creation counter failed", "err", err)
		return
	}
	switch {
	case maxSeq > creationSeq:
		log.Error("[risk] line seq beyond creation counter", "maxSeq", maxSeq, "creationSeq", creationSeq)
		_ = sendAuditEmail("[risk] line seq beyond creation counter",
			fmt.Sprintf("max line seq %v is beyond creation counter %v", maxSeq, creationSeq))
	case lineCount > creationSeq:
		log.Error("[risk] more trust lines than creations", "lineCount", lineCount, "creationSeq", creationSeq)
		_ = sendAuditEmail("[risk] more trust lines than creations",
			fmt.Sprintf("scanned %v trust lines but creation counter is %v", lineCount, creationSeq))
	case creationSeq-lineCount > maxSeqDriftValue:
		log.Error("[risk] creation counter drift too large", "lineCount", lineCount, "creationSeq", creationSeq, "maxSeqDriftValue", maxSeqDriftValue)
		_ = sendAuditEmail("[risk] creation counter drift too large",
			fmt.Sprintf("scanned %v trust lines but creation counter is %v (max drift %v)", lineCount, creationSeq, maxSeqDriftValue))
	default:
		log.Info("[risk] normal creation counter", "lineCount", lineCount, "creationSeq", creationSeq)
	}
}

func probeServer() {
	url := serverAPIAddress + "/serverinfo"
	client := resty.New()
	resp, err := client.R().Get(url)
	if err != nil {
		log.Error("[risk] probe server failed", "url", url, "err", err)
		_ = sendAuditEmail("[risk] probe trust server failed", fmt.Sprintf("probe '%v' failed: %v", url, err))
		return
	}
	if resp.StatusCode() != 200 {
		log.Error("[risk] probe server wrong status", "url", url, "status", resp.StatusCode())
		_ = sendAuditEmail("[risk] probe trust server failed", fmt.Sprintf("probe '%v' status is %v", url, resp.StatusCode()))
		return
	}
	var info struct {
		Identifier string `json:"identifier"`
		Version    string `json:"version"`
	}
	if err := json.Unmarshal(resp.Body(), &info); err != nil {
		log.Warn("parse server info failed", "url", url, "err", err)
		return
	}
	status, err := mongodb.FindServerStatus()
	if err == nil && status.Identifier != info.Identifier {
		log.Error("[risk] server identifier mismatch", "server", info.Identifier, "database", status.Identifier)
		_ = sendAuditEmail("[risk] server identifier mismatch",
			fmt.Sprintf("server reports identifier '%v' but database holds '%v'", info.Identifier, status.Identifier))
		return
	}
	log.Info("probe server success", "identifier", info.Identifier, "version", info.Version)
}
