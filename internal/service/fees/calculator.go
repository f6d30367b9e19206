package fees

import (
	"math"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Calculator вычисляет стоимость парковки по времени въезда
// Чистая функция от входных данных: текущее время передаётся явно,
// чтобы расчёт был детерминированным и тестируемым
type Calculator struct {
	hourlyRate float64
}

// NewCalculator создает калькулятор с указанной почасовой ставкой
// При нулевой или отрицательной ставке используется ставка по умолчанию
func NewCalculator(hourlyRate float64) *Calculator {
	if hourlyRate <= 0 {
		hourlyRate = domain.DefaultHourlyRate
	}
	return &Calculator{hourlyRate: hourlyRate}
}

// HourlyRate возвращает используемую почасовую ставку
func (c *Calculator) HourlyRate() float64 {
	return c.hourlyRate
}

// Calculate вычисляет стоимость парковки
// Сотрудники паркуются бесплатно. Для остальных стоимость пропорциональна
// длительности в часах (дробные часы не округляются вверх) с округлением
// итога до двух знаков. Если timeIn в будущем (рассинхронизация часов),
// стоимость ограничивается нулём.
func (c *Calculator) Calculate(timeIn time.Time, isEmployee bool, now time.Time) float64 {
	if isEmployee {
		return 0
	}

	hours := now.Sub(timeIn).Hours()
	if hours < 0 {
		return 0
	}

	return math.Round(hours*c.hourlyRate*100) / 100
}
