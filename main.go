package main

import (
	"yoga-master/biz/adaptor"
	"yoga-master/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
)

func main() {
	provider.Init()
	c := provider.Get().Config

	tracer, cfg := hertztracing.NewServerTracer()
	h := server.New(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(":9091", "/metrics")),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(cfg))
	h.Use(adaptor.RequestID())
	h.Use(adaptor.AccessLog(c))

	customizedRegister(h)
	h.Spin()
}
