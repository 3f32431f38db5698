package infra_session_cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/cinevault/internal/model"
)

// Driver keeps admin sessions in redis. Values are JSON encoded sessions,
// expiry is left to redis.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Set(key string, s model.Session, ttl time.Duration) error {
	value, err := encode(s)
	if err != nil {
		return err
	}

	if err := d.client.Set(d.getFullKey(key), value, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// Get reports false when there is no live session under key.
func (d *Driver) Get(key string) (model.Session, bool, error) {
	val, err := d.client.Get(d.getFullKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return model.Session{}, false, nil
		}
		return model.Session{}, false, err
	}

	s, err := decode(val)
	if err != nil {
		return model.Session{}, false, err
	}
	return s, true, nil
}

func (d *Driver) Delete(key string) error {
	return d.client.Del(d.getFullKey(key)).Err()
}

func (d *Driver) Expire(key string, ttl time.Duration) error {
	return d.client.Expire(d.getFullKey(key), ttl).Err()
}

func (d *Driver) getFullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}

func encode(s model.Session) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}
	return string(b), nil
}

func decode(val string) (model.Session, error) {
	var s model.Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return model.Session{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return s, nil
}
