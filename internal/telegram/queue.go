package telegram

import (
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// chatQueue runs tasks one at a time per key, in submission order. Different keys
// run concurrently. A key's worker goroutine exits once its backlog is empty.
type chatQueue struct {
	mu      sync.Mutex
	pending map[string][]func()
	wg      sync.WaitGroup
}

func newChatQueue() *chatQueue {
	return &chatQueue{pending: make(map[string][]func())}
}

// Submit queues task behind everything already submitted for key
func (q *chatQueue) Submit(key string, task func()) {
	q.mu.Lock()
	backlog, running := q.pending[key]
	q.pending[key] = append(backlog, task)
	if running {
		q.mu.Unlock()
		return
	}
	q.wg.Add(1)
	q.mu.Unlock()

	go q.drain(key)
}

func (q *chatQueue) drain(key string) {
	defer q.wg.Done()
	for {
		q.mu.Lock()
		backlog := q.pending[key]
		if len(backlog) == 0 {
			delete(q.pending, key)
			q.mu.Unlock()
			return
		}
		task := backlog[0]
		backlog[0] = nil
		q.pending[key] = backlog[1:]
		q.mu.Unlock()

		task()
	}
}

// Wait blocks until every submitted task has run
func (q *chatQueue) Wait() {
	q.wg.Wait()
}

// updateKey groups updates that must be handled in order: messages by chat,
// inline queries by sender
func updateKey(u tgbotapi.Update) string {
	switch {
	case u.Message != nil && u.Message.Chat != nil:
		return "chat:" + strconv.FormatInt(u.Message.Chat.ID, 10)
	case u.InlineQuery != nil && u.InlineQuery.From != nil:
		return "inline:" + strconv.FormatInt(u.InlineQuery.From.ID, 10)
	default:
		return "update:" + strconv.Itoa(u.UpdateID)
	}
}
