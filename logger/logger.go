// Package logger menyediakan satu instance zap.Logger untuk seluruh aplikasi.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Get mengembalikan logger produksi (JSON ke stdout), dibuat sekali.
func Get() *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		l, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = l
	})
	return instance
}
