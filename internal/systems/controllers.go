package systems

import (
	"cognitive-tactics/internal/domain"
	"errors"
	"sync"
	"time"
)

var ErrControllerClosed = errors.New("controller closed")

// ScriptedController отдаёт команды по списку, потом ждёт.
type ScriptedController struct {
	commands []domain.Command
	next     int
}

func NewScriptedController(commands ...domain.Command) *ScriptedController {
	return &ScriptedController{commands: commands}
}

func (sc *ScriptedController) NextCommand(_ *domain.Character) (domain.Command, error) {
	if sc.next >= len(sc.commands) {
		return domain.WaitCommand, nil
	}
	cmd := sc.commands[sc.next]
	sc.next++
	return cmd, nil
}

// Remaining - сколько команд осталось в скрипте.
func (sc *ScriptedController) Remaining() int {
	return len(sc.commands) - sc.next
}

// ChannelController получает команды из сети.
// Если за timeout ничего не пришло, игрок пропускает ход.
type ChannelController struct {
	commands chan domain.Command
	timeout  time.Duration

	closeOnce sync.Once
	done      chan struct{}
}

func NewChannelController(buffer int, timeout time.Duration) *ChannelController {
	return &ChannelController{
		commands: make(chan domain.Command, buffer),
		timeout:  timeout,
		done:     make(chan struct{}),
	}
}

// Submit кладёт команду в очередь. false, если очередь полна или контроллер закрыт.
func (cc *ChannelController) Submit(cmd domain.Command) bool {
	select {
	case <-cc.done:
		return false
	default:
	}

	select {
	case cc.commands <- cmd:
		return true
	default:
		return false
	}
}

func (cc *ChannelController) NextCommand(_ *domain.Character) (domain.Command, error) {
	select {
	case cmd := <-cc.commands:
		return cmd, nil
	case <-cc.done:
		return domain.WaitCommand, ErrControllerClosed
	default:
	}

	if cc.timeout <= 0 {
		return domain.WaitCommand, nil
	}

	timer := time.NewTimer(cc.timeout)
	defer timer.Stop()

	select {
	case cmd := <-cc.commands:
		return cmd, nil
	case <-cc.done:
		return domain.WaitCommand, ErrControllerClosed
	case <-timer.C:
		return domain.WaitCommand, nil
	}
}

// Close прерывает ожидание команды. Повторный вызов безопасен.
func (cc *ChannelController) Close() {
	cc.closeOnce.Do(func() { close(cc.done) })
}
