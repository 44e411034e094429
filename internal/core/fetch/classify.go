package fetch

import "weatherdash.app/pkg/errors"

// Failure is the user-facing category of a failed fetch
type Failure int

const (
	FailureGeneric Failure = iota
	FailureTimeout
	FailureNotFound
	FailureServer
)

// String returns the string representation of the failure category
func (f Failure) String() string {
	switch f {
	case FailureTimeout:
		return "timeout"
	case FailureNotFound:
		return "not_found"
	case FailureServer:
		return "server"
	default:
		return "generic"
	}
}

const (
	WeatherFailedMessage = "Failed to fetch weather data"

	ForecastTimeoutMessage  = "Request timed out. Please try again."
	ForecastNotFoundMessage = "Forecast data not found for this city."
	ForecastServerMessage   = "Server error. Please try again later."
	ForecastFailedMessage   = "Failed to fetch forecast data. Please check your connection."
)

// Classify maps a gateway error to its failure category
func Classify(err error) Failure {
	switch errors.TypeOf(err) {
	case errors.TimeoutError:
		return FailureTimeout
	case errors.NotFoundError:
		return FailureNotFound
	case errors.ServerError:
		return FailureServer
	default:
		return FailureGeneric
	}
}

// WeatherMessage is the message of a failed current weather fetch; every
// failure looks the same on a weather card.
func WeatherMessage(error) string {
	return WeatherFailedMessage
}

// ForecastMessage is the message of a failed forecast fetch
func ForecastMessage(err error) string {
	switch Classify(err) {
	case FailureTimeout:
		return ForecastTimeoutMessage
	case FailureNotFound:
		return ForecastNotFoundMessage
	case FailureServer:
		return ForecastServerMessage
	default:
		return ForecastFailedMessage
	}
}
