/*
Package registry maps driver names to target factories.

Each driver package registers itself in init():

	func init() {
	    registry.RegisterDriver("mongodb", func(cfg config.TargetConfig, creds config.Credentials) (target.Target, error) {
	        return New(cfg, creds)
	    })
	}

and callers resolve plan entries by name:

	tgt, err := registry.Open(cfg.Targets[0], creds)

Registration panics on duplicates, mirroring database/sql's driver
registration contract.
*/
package registry
