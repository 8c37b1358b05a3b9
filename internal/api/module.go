package api

import (
	"github.com/weisyn/filegen/internal/api/http"
	"go.uber.org/fx"
)

// Module 返回API模块选项
// 目前只有HTTP一种对外接口
func Module() fx.Option {
	return fx.Module("api",
		http.Module(),
	)
}
