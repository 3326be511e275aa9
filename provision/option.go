package provision

// WithPolicySid returns an option to override the statement id of the queue
// access policy.
func WithPolicySid(sid string) PolicySidOption {
	return PolicySidOption(sid)
}

// PolicySidOption is an option type for setting the queue policy statement id.
type PolicySidOption string

func (o PolicySidOption) applyProvisioner(p *Provisioner) {
	p.policySid = string(o)
}

// WithEndpoint returns an option to point both service clients at a custom
// base endpoint, such as a localstack instance. Only Open honours it; clients
// passed to New carry their own endpoint configuration.
func WithEndpoint(url string) EndpointOption {
	return EndpointOption(url)
}

// EndpointOption is an option type for setting the AWS base endpoint.
type EndpointOption string

func (o EndpointOption) applyProvisioner(p *Provisioner) {
	p.endpoint = string(o)
}
