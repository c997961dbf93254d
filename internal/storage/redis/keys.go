package redis

// redisKey maps an application key into the configured namespace.
// Redis keys are binary safe so no escaping is needed.
func (s *Storage) redisKey(key string) string {
	if s.cfg.KeyPrefix == "" {
		return key
	}
	return s.cfg.KeyPrefix + ":" + key
}
