package counter

import (
	"fmt"
	"sync"

	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"

	"github.com/traPtitech/atelier/event"
	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/utils/gormutil"
)

var usersCounter = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "atelier",
	Name:      "users_count",
}, []string{"role"})

// UserCounter ロール別ユーザー数カウンタ
type UserCounter interface {
	// Get 全ユーザー数を返します
	Get() int64
	// GetByRole 指定したロールのユーザー数を返します
	//
	// ロールの変更は反映されません。
	GetByRole(role string) int64
}

type userCounterImpl struct {
	perRole map[string]int64
	total   int64
	sync.RWMutex
}

// NewUserCounter ロール別ユーザー数カウンタを生成します
func NewUserCounter(db *gorm.DB, hub *hub.Hub) (UserCounter, error) {
	counter := &userCounterImpl{perRole: map[string]int64{}}

	var rows []struct {
		Role string
		N    int64
	}
	if err := db.
		Model(&model.User{}).
		Select("role, COUNT(*) AS n").
		Group("role").
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("failed to load users count: %w", err)
	}
	for _, r := range rows {
		counter.perRole[r.Role] = r.N
		usersCounter.WithLabelValues(r.Role).Set(float64(r.N))
	}
	total, err := gormutil.Count(db.Model(&model.User{}))
	if err != nil {
		return nil, fmt.Errorf("failed to load users count: %w", err)
	}
	counter.total = total

	sub := hub.Subscribe(1, event.UserCreated)
	go func() {
		for e := range sub.Receiver {
			u, ok := e.Fields["user"].(*model.User)
			if !ok {
				continue
			}
			counter.inc(u.Role)
		}
	}()
	return counter, nil
}

func (c *userCounterImpl) Get() int64 {
	c.RLock()
	defer c.RUnlock()
	return c.total
}

func (c *userCounterImpl) GetByRole(role string) int64 {
	c.RLock()
	defer c.RUnlock()
	return c.perRole[role]
}

func (c *userCounterImpl) inc(role string) {
	c.Lock()
	c.perRole[role]++
	c.total++
	c.Unlock()
	usersCounter.WithLabelValues(role).Inc()
}
