package health

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"ecommerce-manager/pkg/response"
	"ecommerce-manager/redis"
)

// HealthController 健康检查控制器
type HealthController struct{}

// NewHealthController 创建健康检查控制器
func NewHealthController() *HealthController {
	return &HealthController{}
}

// CheckHealth 基础健康检查
func (h *HealthController) CheckHealth(c *gin.Context) {
	response.Success(c, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
		"service":   "ecommerce-manager",
		"version":   "1.0.0",
	})
}

// CheckLiveness 存活性检查
func (h *HealthController) CheckLiveness(c *gin.Context) {
	response.Success(c, gin.H{
		"status":    "alive",
		"timestamp": time.Now().Unix(),
	})
}

// CheckReadiness 就绪性检查
// Redis 是可选依赖，不可用时只记录不阻断
func (h *HealthController) CheckReadiness(c *gin.Context) {
	issues := make([]string, 0)

	if client := redis.GetClient(); client != nil {
		if err := client.Ping(c.Request.Context()).Err(); err != nil {
			issues = append(issues, "redis: "+err.Error())
		}
	}

	status := "ready"
	if len(issues) > 0 {
		status = "degraded"
	}
	response.Success(c, gin.H{
		"status":     status,
		"timestamp":  time.Now().Unix(),
		"issues":     issues,
		"goroutines": runtime.NumGoroutine(),
	})
}
