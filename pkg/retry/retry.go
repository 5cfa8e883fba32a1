package retry

import (
	"time"

	"github.com/labstack/gommon/log"
)

const (
	maxRetries        = 6
	retryMultiplier   = 2
	retryInitialDelay = time.Millisecond * 100
)

// Retry выполняет операцию с экспоненциальной задержкой между попытками.
// Возвращает nil, если операция успешна, или последнюю ошибку, если все
// попытки завершились неудачей. Используется только на старте процесса
// при подключении к внешним зависимостям.
func Retry(operation func() error) error {
	retryCounter := 0
	for {
		err := operation()
		if err == nil {
			return nil
		}
		if retryCounter >= maxRetries {
			return err
		}
		log.Errorf("error during retry %d: %v", retryCounter, err)
		time.Sleep(retryInitialDelay * time.Duration(retryCounter*retryMultiplier))
		retryCounter++
	}
}
