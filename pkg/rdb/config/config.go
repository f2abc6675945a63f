package config

import (
	"sync"

	"github.com/realmkeeper/realmkeeper/pkg/config"
)

const minTxRetry = 3

var (
	txRetry     int
	txRetryOnce sync.Once
)

// GetTxRetry is the number of attempts WithTxRetry makes. It comes from
// REALM_TX_RETRY and is never less than 3.
func GetTxRetry() int {
	txRetryOnce.Do(func() {
		txRetry = config.GetIntKeyWithDefault("REALM_TX_RETRY", minTxRetry)
		if txRetry < minTxRetry {
			txRetry = minTxRetry
		}
	})

	return txRetry
}
