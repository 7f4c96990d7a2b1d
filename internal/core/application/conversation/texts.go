package conversation

import (
	"fmt"
	"strings"
	"time"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/queries"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"
	"github.com/RomanElektrik/musorok-bot/internal/core/ports"
)

// OrderPrice is the fixed pickup price in rubles. There is no dynamic
// pricing; every order costs the same.
const OrderPrice = 149

// Scheduling delays for the deferred follow-ups after payment.
const (
	// AssignmentDelay is how long after payment the assignment runs.
	AssignmentDelay = 2 * time.Second
	// MenuRedisplayDelay is how long after payment the main menu reappears.
	MenuRedisplayDelay = 4 * time.Second
)

// Button labels. Inbound text is matched against these exact strings.
const (
	btnOrderPickup   = "🚮 Заказать вынос мусора"
	btnCancel        = "Отменить"
	btnPay           = "Оплатить"
	btnEditAddress   = "Изменить адрес"
	btnMyOrders      = "Мои заказы"
	btnMyBalance     = "Мой счёт"
	btnRegister      = "Зарегистрироваться"
	btnAboutService  = "О сервисе"
	btnStartWorking  = "Начать работать"
	btnGoOnShift     = "🟢 Начать работу"
	btnGoOffShift    = "🔴 Завершить работу"
	btnSharePhone    = "Отправить номер телефона"
	btnManualPhone   = "Ввести номер вручную"
	btnShareLocation = "Поделиться локацией"
	btnRejectOrder   = "Отклонить заказ"
)

// Customer-facing texts.
const (
	textClientWelcome      = "Добро пожаловать в сервис МусорОК! Чтобы сделать заказ, нажмите кнопку ниже."
	textClientPressStart   = "Для начала работы нажмите кнопку ниже"
	textClientIdleHint     = "Для заказа выноса мусора нажмите на кнопку ниже"
	textAskAddress         = "🏠 Отправьте ваш адрес (улица и номер дома)"
	textAskEntrance        = "🚪 Отправьте номер подъезда, этажа и квартиры одним сообщением"
	textOrderCancelled     = "Заказ отменен"
	textOrderPaid          = "✅ Заказ оплачен! Ищем ближайшего курьера..."
	textWhatNext           = "Что дальше?"
	textCourierFound       = "👍 Курьер найден! Он скоро свяжется с вами."
	textNoCouriers         = "⏳ В данный момент нет доступных курьеров. Мы назначим курьера, как только кто-то освободится."
	textAssignFailed       = "Произошла ошибка при поиске курьера. Пожалуйста, попробуйте позже."
	textOrderCreateFailed  = "Произошла ошибка при создании заказа. Пожалуйста, попробуйте еще раз."
)

// Courier-facing texts.
const (
	textCourierWelcome = "👋 Привет! Я бот для курьеров сервиса МусорОК.\n\n" +
		"Чтобы начать зарабатывать, пройди простую регистрацию."
	textCourierPressStart     = "Для начала работы нажмите /start"
	textCourierWelcomeBack    = "Добро пожаловать обратно! Выберите действие:"
	textCourierResumePrompt   = "Продолжим регистрацию. На каком этапе вы остановились?"
	textActionCancelled       = "Действие отменено"
	textRegistrationWelcome   = "👤 Добро пожаловать в систему регистрации курьеров!\n\n" +
		"Для начала работы, пожалуйста, введите ваше полное ФИО:"
	textRegistrationRequired  = "Для начала работы необходимо пройти регистрацию. Пожалуйста, введите ваше полное ФИО:"
	textAskCity               = "✅ Отлично! Укажите город и район в формате: Город, Район\n\nНапример: Пенза, Октябрьский"
	textAskPhone              = "📱 Ещё нужен твой номер телефона. Это нужно для подстраховки - если что-то пойдет не так, " +
		"мы сможем с тобой связаться. Нажмите кнопку ниже, чтобы отправить номер телефона."
	textAskPhoneManually      = "Введите ваш номер телефона в формате +7XXXXXXXXXX:"
	textAskPassport           = "📷 Отлично! Теперь нужна фотография для подтверждения личности.\n\n" +
		"Сделай селфи с первой страницей паспорта в руках. Все данные должно быть хорошо видно.\n\n" +
		"Это стандартная процедура безопасности, как в Яндекс.Такси и других сервисах 👍"
	textPassportVerified      = "✅ Ваш паспорт проверен и подтвержден! Теперь вы можете начать работать."
	textAboutService          = "Как это работает:\n\n✅ Берёшь заказ который тебе удобно выполнять\n" +
		"✅ Забираешь мусор от двери\n✅ Присылаешь фото выполненного заказа\n" +
		"✅ Вечером в 21:00 получаешь деньги на карту"
	textShiftStarted          = "Вы начали работу! Теперь вы можете получать заказы."
	textShiftFinished         = "Вы завершили работу на сегодня. Спасибо!"
	textNoOrdersYet           = "У вас пока нет заказов."
	textLocationUpdated       = "✅ Ваша локация обновлена! Теперь вы сможете получать заказы поблизости."
	textGenericCourierFailure = "Произошла ошибка. Пожалуйста, попробуйте еще раз."
)

// statusLabels maps persisted order statuses to their display names in the
// courier's order list.
var statusLabels = map[order.Status]string{
	order.StatusCreated:    "⏳ Создан",
	order.StatusAssigned:   "🔄 Назначен",
	order.StatusInProgress: "🚶‍♂️ В процессе",
	order.StatusCompleted:  "✅ Выполнен",
	order.StatusCancelled:  "❌ Отменен",
}

func statusLabel(s order.Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func row(labels ...string) []ports.Button {
	buttons := make([]ports.Button, 0, len(labels))
	for _, label := range labels {
		buttons = append(buttons, ports.Button{Label: label})
	}
	return buttons
}

func clientMainKeyboard() [][]ports.Button {
	return [][]ports.Button{row(btnOrderPickup)}
}

func clientAfterOrderKeyboard() [][]ports.Button {
	return [][]ports.Button{row(btnOrderPickup), row(btnMyOrders)}
}

func cancelKeyboard() [][]ports.Button {
	return [][]ports.Button{row(btnCancel)}
}

func confirmKeyboard() [][]ports.Button {
	return [][]ports.Button{row(btnPay), row(btnEditAddress), row(btnCancel)}
}

func courierNewKeyboard() [][]ports.Button {
	return [][]ports.Button{row(btnRegister), row(btnAboutService)}
}

func courierAboutKeyboard() [][]ports.Button {
	return [][]ports.Button{row(btnStartWorking), row(btnRegister)}
}

func courierResumeKeyboard() [][]ports.Button {
	return [][]ports.Button{
		row("Ввести ФИО"),
		row("Указать город и район"),
		row("Ввести номер телефона"),
		row("Загрузить фото паспорта"),
	}
}

func courierMainKeyboard(available bool) [][]ports.Button {
	toggle := btnGoOnShift
	if available {
		toggle = btnGoOffShift
	}
	return [][]ports.Button{
		row(toggle),
		row(btnMyOrders),
		row(btnMyBalance),
		{{Label: btnShareLocation, RequestLocation: true}},
	}
}

func courierOnShiftKeyboard() [][]ports.Button {
	return [][]ports.Button{
		row(btnGoOffShift),
		row(btnMyOrders),
		{{Label: btnShareLocation, RequestLocation: true}},
	}
}

func courierOffShiftKeyboard() [][]ports.Button {
	return [][]ports.Button{
		row(btnGoOnShift),
		row(btnMyOrders),
		row(btnMyBalance),
	}
}

func phoneKeyboard() [][]ports.Button {
	return [][]ports.Button{
		{{Label: btnSharePhone, RequestContact: true}},
		row(btnManualPhone),
	}
}

func orderSummaryText(draft ports.DraftAddress, price int) string {
	return fmt.Sprintf(
		"🔄 Проверьте детали заказа:\n\nАдрес: %s\nПодъезд: %s\nЭтаж: %s\nКвартира: %s\n\nСтоимость: %d₽",
		draft.Street, draft.Entrance, draft.Floor, draft.Apartment, price,
	)
}

func newOrderText(address order.Address, price int) string {
	return fmt.Sprintf(
		"📦 Новый заказ!\n\nАдрес: %s\nПодъезд: %s\nЭтаж: %s\nКвартира: %s\n\nСтоимость: %d₽",
		address.Street, address.Entrance, address.Floor, address.Apartment, price,
	)
}

func orderListText(orders []queries.GetCourierOrdersQueryResponse) string {
	var sb strings.Builder
	sb.WriteString("Ваши последние заказы:\n\n")
	for _, o := range orders {
		fmt.Fprintf(&sb, "📋 Заказ от %s\n", o.CreatedAt.Format("02.01.2006"))
		fmt.Fprintf(&sb, "🏠 %s, подъезд %s\n", o.Street, o.Entrance)
		fmt.Fprintf(&sb, "💰 Сумма: %d₽\n", o.Price)
		fmt.Fprintf(&sb, "🔄 Статус: %s\n\n", statusLabel(o.Status))
	}
	return sb.String()
}

func balanceText(balance queries.GetCourierBalanceQueryResponse) string {
	return fmt.Sprintf(
		"💰 Информация о счете:\n\nВыполнено заказов: %d\nОбщий заработок: %d₽\nВыплата сегодня в 21:00: %d₽\n\n"+
			"Заработок зависит от количества выполненных заказов.",
		balance.CompletedOrders, balance.TotalEarned, balance.TotalEarned,
	)
}
