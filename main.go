// @title Interview Readiness API
// @version 1.0
// @description 面试准备进度跟踪服务：技能自评、连续打卡、表现分析、每日建议与 AI 练习题。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import "interview_readiness_backend/cmd"

func main() {
	cmd.Execute()
}
