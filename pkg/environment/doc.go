// Package environment names the deployment environment a process runs in.
//
// The value comes from APP_ENV and is parsed once at startup:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	log := logger.New(logger.WithEnvironment(env, "folio"))
//
// Short aliases ("prod", "stage") are accepted. Anything else, including an
// empty value, is treated as development.
package environment
