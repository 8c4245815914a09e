package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	ProductsCreated prometheus.Counter
	OrdersReceived  prometheus.Counter
	OrderTotal      prometheus.Histogram
	OrderLines      prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	productsCreated := prometheus.NewCounter(prometheus.CounterOpts{Name: "market_products_created_total"})
	ordersReceived := prometheus.NewCounter(prometheus.CounterOpts{Name: "market_orders_received_total"})
	orderTotal := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "market_order_total_amount",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
	})
	orderLines := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "market_order_line_count",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
	})

	r.MustRegister(productsCreated, ordersReceived, orderTotal, orderLines)

	return &Registry{
		reg:             r,
		ProductsCreated: productsCreated,
		OrdersReceived:  ordersReceived,
		OrderTotal:      orderTotal,
		OrderLines:      orderLines,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
