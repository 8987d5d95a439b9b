package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"chemstock/db"
)

// TouchLastSeen stamps the user registry at most once per throttle window.
func TouchLastSeen(repo *db.Repo, rdb *redis.Client, throttle time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := Username(c)
		if username == "" {
			c.Next()
			return
		}

		key := "chem:lastseen:" + username
		if ok, _ := rdb.SetNX(c, key, "1", throttle).Result(); ok {
			_ = repo.TouchUserSeen(c, username) // ignore errors, never block the request
		}
		c.Next()
	}
}
