/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres or none (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: file:luxbin.db)
  - IPHashSalt: secret for client IP hashing (empty disables IP logging)
  - APIKey: protects the transmission log endpoints (empty leaves them open)
  - MQTTBroker, MQTTClientID, MQTTTopic: light emitter (empty broker disables it)
  - GeminiAPIKey, GeminiModel, TranslateTimeout: pre-translation

# CLI Flags

	-p                  Server port
	-d                  Database URL
	-t                  Database type
	--ip-salt           Client IP hash salt
	--api-key           Transmission log API key
	--mqtt-broker       MQTT broker URL
	--mqtt-client-id    MQTT client ID
	--mqtt-topic        MQTT topic prefix
	--gemini-model      Gemini model name
	--translate-timeout Pre-translation timeout

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	IP_HASH_SALT      → --ip-salt
	API_KEY           → --api-key
	MQTT_BROKER       → --mqtt-broker
	MQTT_CLIENT_ID    → --mqtt-client-id
	MQTT_TOPIC        → --mqtt-topic
	GEMINI_MODEL      → --gemini-model
	TRANSLATE_TIMEOUT → --translate-timeout

MQTT_USERNAME, MQTT_PASSWORD and GEMINI_API_KEY are read from the
environment only. CLI flags take precedence over environment variables.
A .env file in the working directory is loaded by main before parsing.

# Validation

ParseFlags returns an error if:

  - PORT is not a number or out of range
  - DATABASE_TYPE is unknown
  - DATABASE_TYPE is postgres and no DATABASE_URL is given
  - TRANSLATE_TIMEOUT is not a duration
*/
package cliparse
