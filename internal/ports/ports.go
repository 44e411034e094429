package ports

// ApplicationPorts bundles the adapters the dashboard use cases are built from
type ApplicationPorts struct {
	Gateway WeatherGateway

	Notifier         Notifier
	NotificationFeed NotificationFeed

	FetchMetrics FetchMetrics
	Health       SystemHealthChecker

	ConfigProvider ConfigProvider
	Logger         Logger
}
