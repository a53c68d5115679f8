package config

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigEnginePrefix      = ConfigPrefix + delimiter + "engine"
	ConfigEngineMaxElements = ConfigEnginePrefix + delimiter + "max_elements"
	ConfigEngineParallelism = ConfigEnginePrefix + delimiter + "parallelism"
	ConfigEnginePolicy      = ConfigEnginePrefix + delimiter + "policy"

	ConfigLogPrefix = ConfigPrefix + delimiter + "log"
	ConfigLogLevel  = ConfigLogPrefix + delimiter + "level"
)
