/*
Package metrics wraps datadog-go to facilitate metric recording.
Naming convention:
- Internal process time: *.time
- Error: *.err
- Counter: *.count
*/
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/mintora/goapi/base/env"
	"github.com/mintora/goapi/base/log"
)

// Ender finishes a timing started by BumpTime
type Ender interface {
	End()
}

// Service provides the metric recording surface used by usecases
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

const (
	ddRate        = 1
	bufferMetrics = 10
)

var (
	initOnce sync.Once
	ddClient *statsd.Client
	ddTags   []string
)

func initDDClient() {
	host := viper.GetString("datadog_host")
	port := viper.GetInt("datadog_port")
	if port == 0 {
		port = 8125
	}
	addr := fmt.Sprintf("%s:%d", host, port)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")

	cli, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
	}
	ddClient = cli
	ddTags = []string{
		"host:", // using empty host removes all tags associated with host
		"pod:" + env.PodName(),
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &metrics{pkgName: pkgName}
}

type metrics struct {
	pkgName string
}

func (mt *metrics) withTags(tags []string) []string {
	out := append([]string{}, ddTags...)
	for i := 0; i+1 < len(tags); i += 2 {
		out = append(out, tags[i]+":"+tags[i+1])
	}
	return out
}

// BumpAvg bumps the average for the given key.
// datadog has no average-only type, a gauge is the closest fit.
func (mt *metrics) BumpAvg(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Gauge(mt.pkgName+"."+key, val, mt.withTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"key": key, "err": err}).Warn("BumpAvg failed")
	}
}

// BumpSum bumps the sum for the given key.
func (mt *metrics) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Count(mt.pkgName+"."+key, int64(val), mt.withTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"key": key, "err": err}).Warn("BumpSum failed")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *metrics) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Histogram(mt.pkgName+"."+key, val, mt.withTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"key": key, "err": err}).Warn("BumpHistogram failed")
	}
}

// BumpTime starts a timer. Calling End() on the returned value records
// the elapsed time:
//
//	defer s.BumpTime("my.function").End()
func (mt *metrics) BumpTime(key string, tags ...string) Ender {
	initOnce.Do(initDDClient)
	return &timeTracker{
		key:   mt.pkgName + "." + key,
		tags:  mt.withTags(tags),
		start: time.Now(),
	}
}

type timeTracker struct {
	key   string
	tags  []string
	start time.Time
}

func (t *timeTracker) End() {
	elapsed := float64(time.Since(t.start) / time.Millisecond)
	if err := ddClient.TimeInMilliseconds(t.key, elapsed, t.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"key": t.key, "err": err}).Warn("BumpTime failed")
	}
}
