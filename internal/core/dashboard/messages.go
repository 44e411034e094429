package dashboard

import "fmt"

// Notification titles and descriptions shown after user-triggered mutations
const (
	titleSuccess = "Success"
	titleError   = "Error"

	titleFavoriteAdded   = "Added to favorites"
	titleFavoriteRemoved = "Removed from favorites"
	titleUnitUpdated     = "Preferences updated"

	msgLoadFailed       = "Failed to load weather data. Please check your connection."
	msgAddCityFailed    = "Failed to add city. Please try again."
	msgCityRemoved      = "City has been removed from your dashboard."
	msgRemoveFailed     = "Failed to remove city. Please try again."
	msgFavoriteAdded    = "City has been added to your favorites."
	msgFavoriteRemoved  = "City has been removed from your favorites."
	msgFavoritesFailed  = "Failed to update favorites. Please try again."
	msgPreferenceFailed = "Failed to update preferences. Please try again."
)

func cityAddedMessage(name string) string {
	return fmt.Sprintf("%s has been added to your weather dashboard.", name)
}

func unitUpdatedMessage(unit string) string {
	return fmt.Sprintf("Temperatures are now shown in °%s.", unit)
}
