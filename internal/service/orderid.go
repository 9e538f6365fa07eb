package service

import (
	"fmt"
	"math/rand"
	"time"
)

const orderSuffixCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newOrderID and newOrderNumber generate human-readable labels from the
// current timestamp plus a random base36 suffix. They are best-effort
// unique; the store's uuid primary key carries the real identity.
func newOrderID() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), randomSuffix(9))
}

func newOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), randomSuffix(6))
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = orderSuffixCharset[rand.Intn(len(orderSuffixCharset))]
	}
	return string(b)
}
