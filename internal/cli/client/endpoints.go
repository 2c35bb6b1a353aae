package client

const (
	apiPrefix = "/uapi-manage"

	endpointLogin  = apiPrefix + "/auth/login"
	endpointLogout = apiPrefix + "/auth/logout"

	endpointProjects    = apiPrefix + "/projects"         // GET, POST
	endpointProjectApis = apiPrefix + "/projects/%s/apis" // GET

	endpointApis = apiPrefix + "/apis" // GET, POST
)
