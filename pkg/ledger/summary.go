// Пакет ledger — чистые функции над журналом операций лояльности.
package ledger

import "github.com/Gunvolt24/cleanpos/internal/domain"

// Summarize — фильтрует операции по типу (пустой filter = без фильтра) и считает суммы
// по тому списку, который возвращает.
//
// В сумму типа идёт модуль баллов независимо от хранимого знака.
// adjusted и неизвестные типы остаются в списке, но ни в одну сумму не попадают.
// Порядок входа сохраняется (сортировка — забота источника).
func Summarize(txs []domain.LoyaltyTransaction, filter domain.TransactionType) ([]domain.LoyaltyTransaction, domain.LedgerSummary) {
	list := txs
	if filter != "" {
		list = make([]domain.LoyaltyTransaction, 0, len(txs))
		for i := range txs {
			if txs[i].Type == filter {
				list = append(list, txs[i])
			}
		}
	}

	var summary domain.LedgerSummary
	for i := range list {
		points := abs(list[i].Points)
		switch list[i].Type {
		case domain.TxEarned:
			summary.TotalEarned += points
		case domain.TxRedeemed:
			summary.TotalRedeemed += points
		case domain.TxExpired:
			summary.TotalExpired += points
		case domain.TxBonus:
			summary.TotalBonus += points
		}
	}
	return list, summary
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
