package torchpay

// Environment selects which TorchPay deployment the client talks to.
// Deployments with other URLs are reached with WithBaseURL, which takes
// precedence over the environment.
type Environment string

const (
	// EnvironmentLive is the production deployment. Payments move real
	// funds.
	EnvironmentLive Environment = "live"
	// EnvironmentDevelopment is the sandbox deployment with play money.
	EnvironmentDevelopment Environment = "development"
)

const (
	liveBaseURL        = "https://api.torchpay.com"
	developmentBaseURL = "https://api.dev.torchpay.com"
)

// BaseURL returns the API root for the environment. Unknown values fall
// back to the live deployment.
func (e Environment) BaseURL() string {
	if e == EnvironmentDevelopment {
		return developmentBaseURL
	}
	return liveBaseURL
}
