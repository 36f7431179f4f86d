package main

type Config struct {
	ModelFilepath       string  `env:"MODEL_FILEPATH,default=data.json"`
	BadgerFilepath      string  `env:"BADGER_FILEPATH"`
	IntentsFilepath     string  `env:"INTENTS_FILEPATH,required=true"`
	ConfidenceThreshold float64 `env:"CONFIDENCE_THRESHOLD,default=0.75"`
	BotName             string  `env:"BOT_NAME,default=Sam"`
	LogLevel            string  `env:"LOG_LEVEL,default=INFO"`
}
