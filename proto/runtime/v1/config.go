package v1

// GetConfigurationRequest fetches one or more configuration items by key; an empty
// Keys list means "all items under this store".
type GetConfigurationRequest struct {
	message
	StoreName string
	Keys      []string
	Metadata  map[string]string
}

// ConfigurationItem is a single key/value/version triple from a configuration store.
type ConfigurationItem struct {
	message
	Value    string
	Version  string
	Metadata map[string]string
}

type GetConfigurationResponse struct {
	message
	Items map[string]*ConfigurationItem
}

// SubscribeConfigurationRequest starts (or, on reconnect, restarts) a watch over the
// given keys; Keys empty means "watch everything in this store".
type SubscribeConfigurationRequest struct {
	message
	StoreName string
	Keys      []string
	Metadata  map[string]string
}

// SubscribeConfigurationResponse is a single push of changed items; the first message
// on the stream additionally carries the subscription id used to cancel the watch.
type SubscribeConfigurationResponse struct {
	message
	Id    string
	Items map[string]*ConfigurationItem
}

type UnsubscribeConfigurationRequest struct {
	message
	StoreName string
	Id        string
}

type UnsubscribeConfigurationResponse struct {
	message
	Ok      bool
	Message string
}
