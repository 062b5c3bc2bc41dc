package store

import (
	"github.com/prometheus/client_golang/prometheus"

	"CornerStore/internal/model"
)

// Metrics is optional; a nil *Metrics records nothing.
type Metrics struct {
	Sales     prometheus.Counter
	Amount    prometheus.Counter
	UnitsSold *prometheus.CounterVec
	Products  prometheus.Gauge
	Customers prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Sales: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "store_sales_total",
			Help: "Completed checkouts",
		}),
		Amount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "store_sales_amount_total",
			Help: "Sum of recorded sale totals",
		}),
		UnitsSold: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_units_sold_total",
				Help: "Units deducted from inventory by sales",
			},
			[]string{"code"},
		),
		Products: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "store_products",
			Help: "Products in the catalog",
		}),
		Customers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "store_customers",
			Help: "Registered customers",
		}),
	}

	reg.MustRegister(m.Sales, m.Amount, m.UnitsSold, m.Products, m.Customers)
	return m
}

func (m *Metrics) recordSale(s model.Sale) {
	if m == nil {
		return
	}
	m.Sales.Inc()
	m.Amount.Add(s.Total.InexactFloat64())
	for _, it := range s.LineItems {
		m.UnitsSold.WithLabelValues(it.Product.Code).Add(float64(it.Quantity))
	}
}

func (m *Metrics) setProducts(n int) {
	if m != nil {
		m.Products.Set(float64(n))
	}
}

func (m *Metrics) setCustomers(n int) {
	if m != nil {
		m.Customers.Set(float64(n))
	}
}
