package counter

import (
	"fmt"
	"sync"

	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/traPtitech/atelier/event"
	"github.com/traPtitech/atelier/repository"
)

var chatMessagesCounter = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "atelier",
	Name:      "chat_messages_count_total",
})

// ChatMessageCounter 全チャットメッセージ数カウンタ
type ChatMessageCounter interface {
	// Get 全チャットメッセージ数を返します
	//
	// この数値はチャットウィンドウから外れたメッセージを含んでいます
	Get() int64
}

type chatMessageCounterImpl struct {
	count int64
	sync.RWMutex
}

// NewChatMessageCounter 全チャットメッセージ数カウンタを生成します
func NewChatMessageCounter(repo repository.ChatMessageRepository, hub *hub.Hub) (ChatMessageCounter, error) {
	counter := &chatMessageCounterImpl{}
	n, err := repo.GetChatMessagesCount()
	if err != nil {
		return nil, fmt.Errorf("failed to load total chat messages count: %w", err)
	}
	counter.count = n
	chatMessagesCounter.Add(float64(n))

	sub := hub.Subscribe(1, event.ChatMessageCreated)
	go func() {
		for range sub.Receiver {
			counter.inc()
		}
	}()
	return counter, nil
}

func (c *chatMessageCounterImpl) Get() int64 {
	c.RLock()
	defer c.RUnlock()
	return c.count
}

func (c *chatMessageCounterImpl) inc() {
	c.Lock()
	c.count++
	c.Unlock()
	chatMessagesCounter.Inc()
}
