package service

import "fmt"

// NextAgentCode/NextOperatorCode derive kode sekuensial dari jumlah user
// ber-role sama yang sudah ada: AG0001, AG0002, ... / OP0001, ...
func NextAgentCode(existingAgents int64) string {
	return fmt.Sprintf("AG%04d", existingAgents+1)
}

func NextOperatorCode(existingOperators int64) string {
	return fmt.Sprintf("OP%04d", existingOperators+1)
}
