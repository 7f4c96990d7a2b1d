package conversation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/commands"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/core/ports"
)

// AssignmentNotifier runs courier assignment and tells both sides the
// outcome: the picked courier gets the full order summary with accept and
// reject controls, the customer gets a confirmation. It is invoked by the
// deferred follow-up after payment and by the assignment retry job.
type AssignmentNotifier struct {
	assigner         OrderAssigner
	clientMessenger  ports.Messenger
	courierMessenger ports.Messenger
	log              *slog.Logger
}

// NewAssignmentNotifier creates an AssignmentNotifier.
func NewAssignmentNotifier(
	assigner OrderAssigner,
	clientMessenger ports.Messenger,
	courierMessenger ports.Messenger,
	log *slog.Logger,
) *AssignmentNotifier {
	return &AssignmentNotifier{
		assigner:         assigner,
		clientMessenger:  clientMessenger,
		courierMessenger: courierMessenger,
		log:              log.With("component", "assignment"),
	}
}

// AssignOrder assigns the given order and notifies both parties.
// clientChatID is the paying customer's chat, used for failure notices
// before the assignment result can provide it.
func (n *AssignmentNotifier) AssignOrder(ctx context.Context, orderID kernel.UUID, clientChatID int64) {
	cmd, err := commands.NewAssignCourierCommand(orderID)
	if err != nil {
		n.log.Error("build assign command", "error", err)
		return
	}

	n.assign(ctx, cmd, clientChatID)
}

// AssignOldest assigns the oldest order still waiting for a courier.
// Silent when there is nothing to assign or nobody is on shift; the retry
// job calls this periodically.
func (n *AssignmentNotifier) AssignOldest(ctx context.Context) error {
	result, err := n.assigner.Handle(ctx, commands.NewAssignAnyOrderCommand())
	if errors.Is(err, commands.ErrNoOrderFound) || errors.Is(err, commands.ErrNoAvailableCouriers) {
		return nil
	}
	if err != nil {
		return err
	}

	n.notifyAssigned(ctx, result)
	return nil
}

func (n *AssignmentNotifier) assign(ctx context.Context, cmd commands.AssignCourierCommand, clientChatID int64) {
	result, err := n.assigner.Handle(ctx, cmd)
	switch {
	case errors.Is(err, commands.ErrNoAvailableCouriers):
		n.send(ctx, n.clientMessenger, clientChatID, ports.Reply{Text: textNoCouriers})
		return
	case errors.Is(err, commands.ErrNoOrderFound):
		return
	case err != nil:
		n.log.Error("assign courier", "error", err)
		n.send(ctx, n.clientMessenger, clientChatID, ports.Reply{Text: textAssignFailed})
		return
	}

	n.notifyAssigned(ctx, result)
}

func (n *AssignmentNotifier) notifyAssigned(ctx context.Context, result commands.AssignmentResult) {
	n.send(ctx, n.courierMessenger, result.Courier.ChatID(), ports.Reply{
		Text: newOrderText(result.Order.Address(), result.Order.Price()),
		Keyboard: [][]ports.Button{
			row("Принять заказ №" + result.Order.ID().String()),
			row(btnRejectOrder),
		},
	})
	n.send(ctx, n.clientMessenger, result.ClientChatID, ports.Reply{Text: textCourierFound})
}

func (n *AssignmentNotifier) send(ctx context.Context, m ports.Messenger, chatID int64, reply ports.Reply) {
	if err := m.Send(ctx, chatID, reply); err != nil {
		n.log.Error("send message", "chatID", chatID, "error", err)
	}
}
