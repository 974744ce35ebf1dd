// Package config loads the editor configuration file.
//
// Example:
//
//	history_limit: 200
//	region_band: 24
//	log_level: debug
//	catalog: widgets.yaml
//	ignore:
//	  - build/
//	  - "*.draft.scene.yaml"
//
// Every field is optional. A relative catalog path is resolved against the
// directory of the configuration file.
package config
