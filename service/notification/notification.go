package notification

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
)

// Event describes a settled ownership change for the side channels.
type Event struct {
	NftId          string         `json:"nftId"`
	NewOwner       domain.Address `json:"newOwner"`
	Price          string         `json:"price"`
	TransactionRef string         `json:"transactionRef"`
	Timestamp      time.Time      `json:"timestamp"`
}

// Sender delivers one event over a concrete channel (mail, chat, ...).
type Sender interface {
	Send(c ctx.Ctx, ev Event) error
}

// Service fans settled-transfer events out to senders. Delivery is
// fire-and-forget: a failing sender must never fail or roll back the
// transfer that triggered it.
type Service interface {
	NotifyTransfer(c ctx.Ctx, ev Event)
	Close()
}

type impl struct {
	pool    *goroutines.Pool
	senders []Sender
}

func New(poolSize int, senders ...Sender) Service {
	return &impl{
		pool:    goroutines.NewPool(poolSize),
		senders: senders,
	}
}

func (im *impl) NotifyTransfer(c ctx.Ctx, ev Event) {
	for _, sender := range im.senders {
		s := sender
		if err := im.pool.Schedule(func() {
			if err := s.Send(c, ev); err != nil {
				c.WithFields(log.Fields{
					"err":   err,
					"nftId": ev.NftId,
					"ref":   ev.TransactionRef,
				}).Warn("notification send failed")
			}
		}); err != nil {
			c.WithField("err", err).Warn("notification schedule failed")
		}
	}
}

func (im *impl) Close() {
	im.pool.Release()
}

type logSender struct{}

// NewLogSender returns a sender that only logs, used when no side
// channel is configured.
func NewLogSender() Sender {
	return logSender{}
}

func (logSender) Send(c ctx.Ctx, ev Event) error {
	c.WithFields(log.Fields{
		"nftId":    ev.NftId,
		"newOwner": ev.NewOwner,
		"price":    ev.Price,
		"ref":      ev.TransactionRef,
	}).Info("ownership transferred")
	return nil
}
