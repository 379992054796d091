package v1

type GetMetadataRequest struct {
	message
}

type RegisteredComponents struct {
	message
	Name    string
	Type    string
	Version string
}

type ActiveActorsCount struct {
	message
	Type  string
	Count int32
}

type GetMetadataResponse struct {
	message
	Id                 string
	ActiveActorsCount  []*ActiveActorsCount
	RegisteredComponents []*RegisteredComponents
	ExtendedMetadata   map[string]string
}

type SetMetadataRequest struct {
	message
	Key   string
	Value string
}

type ShutdownRequest struct {
	message
}
