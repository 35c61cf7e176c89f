package command

// User-facing copy
const (
	MsgBlocked       = "Вы заблокированы и не можете использовать бота."
	MsgGenericError  = "Произошла ошибка. Попробуйте позже."
	MsgNoPermission  = "У вас нет прав на выполнение этой команды."
	MsgHelpMissing   = "Справка недоступна."
	MsgNeedTargetID  = "Пожалуйста, укажите ID пользователя."
	MsgUserBlocked   = "Пользователь %s заблокирован."
	MsgUserUnblocked = "Пользователь %s разблокирован."

	MsgSkinNotFound      = "Скин не найден."
	MsgSkinNameMissing   = "Пожалуйста, укажите название скина после команды /skin."
	MsgColNameMissing    = "Пожалуйста, укажите название скина после команды /col."
	MsgCollectionMissing = "Коллекция для данного скина не найдена."
	MsgCollectionEmpty   = "Скины для данной коллекции не найдены."

	MsgAddFormat       = "Пожалуйста, используйте формат: /add <название_скина>: <количество>"
	MsgDelFormat       = "Пожалуйста, используйте формат: /del <название_скина>: <количество>"
	MsgQuantityInvalid = "Пожалуйста, введите корректное количество скинов."
	MsgQuantityRange   = "Количество скинов должно быть больше 0 и не превышать %d. Пожалуйста, введите корректное число."

	MsgConfirmAdd       = "Вы добавляете %d скинов: %s. Подтвердите (да/нет)?"
	MsgConfirmRemove    = "Вы удаляете %d скинов: %s. Подтвердите (да/нет)?"
	MsgConfirmRemoveAll = "Вы удаляете все скины: %s. Подтвердите (да/нет)?"
	MsgAdded            = "Добавлено %d скинов %s в ваш инвентарь."
	MsgRemoved          = "Удалено %d скинов %s из вашего инвентаря."
	MsgRemovedAll       = "Удалены все скины %s из вашего инвентаря."
	MsgAddCancelled     = "Добавление отменено."
	MsgRemoveCancelled  = "Удаление отменено."
	MsgNotEnough        = "Недостаточно скинов %s для удаления."
	MsgNotHeld          = "Скина %s нет в вашем инвентаре."
	MsgConfirmExpired   = "Время подтверждения истекло. Повторите команду."
	MsgConfirmForeign   = "Пожалуйста, ответьте на свой запрос. Этот запрос принадлежит другому пользователю."

	MsgInventoryEmpty = "Ваш инвентарь пуст."
)

// Card and listing labels
const (
	LabelName           = "Название: %s"
	LabelCollection     = "Коллекция: %s"
	LabelRarity         = "Редкость: %s"
	LabelSalesCount     = "Количество предложений: %s"
	LabelPurchasesCount = "Количество запросов: %s"
	LabelSalePrice      = "Цена продажи: %sG"
	LabelPurchasePrice  = "Запрос: %sG"
	LabelCasePrice      = "Цена кейса: %s"
	LabelContents       = "Содержимое:"
	LabelNoData         = "Нет данных"
	LabelCollectionHead = "Скины в коллекции %s:"

	LabelInventoryHead   = "Ваш инвентарь:"
	LabelLineSkin        = "Скин: %s"
	LabelLineMissing     = "Скин: %s (не найден в базе)"
	LabelLineQuantity    = "Количество: %d"
	LabelLineUnitPrice   = "Цена за единицу: %.2fG"
	LabelLineAfterFee    = "При продаже: %.2fG"
	LabelInventoryRaw    = "Стоимость без комиссии: %.2fG"
	LabelInventoryTotal  = "Общая стоимость инвентаря: %.2fG"
	LabelGroupMember     = "      %s"
	LabelGroupRarityHead = "%s:"
)
