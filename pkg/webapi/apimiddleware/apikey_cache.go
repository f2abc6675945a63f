package apimiddleware

import (
	"sync"

	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/stor"
)

type APIKeyCache struct {
	apikeyCacheMu sync.RWMutex
	cache         map[string]*model.User
	userStor      stor.UserStor
}

func NewAPIKeyCache(userStor stor.UserStor) *APIKeyCache {
	return &APIKeyCache{
		cache:    make(map[string]*model.User),
		userStor: userStor,
	}
}

func (c *APIKeyCache) GetUserByAPIKey(apikey string) (*model.User, error) {
	c.apikeyCacheMu.RLock()

	if user, ok := c.cache[apikey]; ok {
		c.apikeyCacheMu.RUnlock()
		return user, nil
	}

	c.apikeyCacheMu.RUnlock()
	c.apikeyCacheMu.Lock()
	defer c.apikeyCacheMu.Unlock()

	// Another request may have loaded the key between the two locks.
	if user, ok := c.cache[apikey]; ok {
		return user, nil
	}

	user, err := c.userStor.GetUserByAPIToken(apikey)
	if err != nil {
		return nil, err
	}

	c.cache[apikey] = user
	return user, nil
}
