package memory

import (
	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/ports"
)

// Проверка, что FlightCache удовлетворяет портам кэшей справочников.
var (
	_ ports.BranchCache  = (*FlightCache[domain.Branch])(nil)
	_ ports.WeatherCache = (*FlightCache[domain.Weather])(nil)
)
