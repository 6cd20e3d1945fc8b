package notifier

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Update is an incoming text message.
type Update struct {
	ChatID   int64
	Username string
	Text     string
}

// UpdateHandler processes one update. Updates of the same chat are handled one at a time, in order.
type UpdateHandler func(ctx context.Context, u Update)

type telegramUpdate struct {
	UpdateID int `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
		Chat struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
		} `json:"chat"`
	} `json:"message"`
}

type getUpdatesResponse struct {
	OK     bool             `json:"ok"`
	Result []telegramUpdate `json:"result"`
}

// StartPolling long-polls for messages until ctx is cancelled. Each chat gets its own worker so a
// paced reply in one chat does not hold up the others.
func (t *TelegramNotifier) StartPolling(ctx context.Context, handler UpdateHandler) {
	offset := 0
	workers := newChatWorkers(handler, t.workerIdle, t.log)
	dispatch := func(u Update) { workers.dispatch(ctx, u) }
	defer workers.wait()

	for {
		select {
		case <-ctx.Done():
			t.log.Info().Msg("telegram polling stopped")
			return
		default:
		}

		var result getUpdatesResponse
		resp, err := t.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"offset":  strconv.Itoa(offset),
				"timeout": "30",
			}).
			SetResult(&result).
			Get("/getUpdates")
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			t.log.Warn().Err(err).Msg("polling request failed")
			sleepCtx(ctx, 5*time.Second)
			continue
		}
		if !resp.IsSuccess() || !result.OK {
			t.log.Warn().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("polling rejected")
			sleepCtx(ctx, 5*time.Second)
			continue
		}

		for _, update := range result.Result {
			offset = update.UpdateID + 1
			if update.Message == nil || strings.TrimSpace(update.Message.Text) == "" {
				continue
			}
			u := Update{
				ChatID:   update.Message.Chat.ID,
				Username: update.Message.Chat.Username,
				Text:     strings.TrimSpace(update.Message.Text),
			}
			t.log.Debug().Int64("chat", u.ChatID).Str("text", u.Text).Msg("received message")
			dispatch(u)
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// maxQueuedPerChat bounds the backlog of one chat; further messages are dropped until it drains.
const maxQueuedPerChat = 64

type chatQueue struct {
	pending []Update
	wake    chan struct{}
}

// chatWorkers runs one goroutine per active chat. Enqueueing never blocks, and a worker exits
// after idle with an empty queue.
type chatWorkers struct {
	mu      sync.Mutex
	wg      sync.WaitGroup
	queues  map[int64]*chatQueue
	handler UpdateHandler
	idle    time.Duration
	log     zerolog.Logger
}

func newChatWorkers(handler UpdateHandler, idle time.Duration, log zerolog.Logger) *chatWorkers {
	return &chatWorkers{
		queues:  make(map[int64]*chatQueue),
		handler: handler,
		idle:    idle,
		log:     log,
	}
}

func (w *chatWorkers) dispatch(ctx context.Context, u Update) {
	w.mu.Lock()
	q, ok := w.queues[u.ChatID]
	if !ok {
		q = &chatQueue{wake: make(chan struct{}, 1)}
		w.queues[u.ChatID] = q
		w.wg.Add(1)
		go w.run(ctx, u.ChatID, q)
	}
	if len(q.pending) >= maxQueuedPerChat {
		w.mu.Unlock()
		w.log.Warn().Int64("chat", u.ChatID).Int("queued", maxQueuedPerChat).Msg("chat backlog full, dropping message")
		return
	}
	q.pending = append(q.pending, u)
	w.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (w *chatWorkers) run(ctx context.Context, chatID int64, q *chatQueue) {
	defer w.wg.Done()
	idle := time.NewTimer(w.idle)
	defer idle.Stop()

	for ctx.Err() == nil {
		w.mu.Lock()
		if len(q.pending) > 0 {
			next := q.pending[0]
			q.pending = q.pending[1:]
			w.mu.Unlock()
			w.handler(ctx, next)
			idle.Reset(w.idle)
			continue
		}
		w.mu.Unlock()

		select {
		case <-ctx.Done():
			return
		case <-q.wake:
		case <-idle.C:
			w.mu.Lock()
			if len(q.pending) == 0 {
				delete(w.queues, chatID)
				w.mu.Unlock()
				return
			}
			w.mu.Unlock()
			idle.Reset(w.idle)
		}
	}
}

// active is the number of chats with a running worker.
func (w *chatWorkers) active() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.queues)
}

func (w *chatWorkers) wait() { w.wg.Wait() }
