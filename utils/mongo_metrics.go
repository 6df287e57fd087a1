package utils

import (
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/event"
)

type MongoMetrics struct {
	CheckedOut  int64     `json:"checked_out"`
	Created     int64     `json:"created"`
	Closed      int64     `json:"closed"`
	LastEventAt time.Time `json:"last_event_at"`
}

var (
	mongoCheckedOut  atomic.Int64
	mongoCreated     atomic.Int64
	mongoClosed      atomic.Int64
	mongoLastEventNs atomic.Int64
)

// MongoPoolMonitor keeps connection pool counters and the db_pool_connections
// gauge in step with driver pool events.
func MongoPoolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			mongoLastEventNs.Store(time.Now().UnixNano())
			switch evt.Type {
			case event.ConnectionCreated:
				mongoCreated.Add(1)
				DBPoolConnections.WithLabelValues("open").Inc()
			case event.ConnectionClosed:
				mongoClosed.Add(1)
				DBPoolConnections.WithLabelValues("open").Dec()
			case event.GetSucceeded:
				mongoCheckedOut.Add(1)
				DBPoolConnections.WithLabelValues("in_use").Inc()
			case event.ConnectionReturned:
				mongoCheckedOut.Add(-1)
				DBPoolConnections.WithLabelValues("in_use").Dec()
			}
		},
	}
}

func GetMongoMetrics() MongoMetrics {
	m := MongoMetrics{
		CheckedOut: mongoCheckedOut.Load(),
		Created:    mongoCreated.Load(),
		Closed:     mongoClosed.Load(),
	}
	if ns := mongoLastEventNs.Load(); ns != 0 {
		m.LastEventAt = time.Unix(0, ns)
	}
	return m
}
