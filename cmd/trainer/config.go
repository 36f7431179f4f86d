package main

import "github.com/Saravanan-32/customer-service-chatbot/trainer"

type Config struct {
	IntentsFilepath string  `env:"INTENTS_FILEPATH,required=true"`
	ModelFilepath   string  `env:"MODEL_FILEPATH,default=data.json"`
	BadgerFilepath  string  `env:"BADGER_FILEPATH"`
	LogLevel        string  `env:"LOG_LEVEL,default=INFO"`
	BatchSize       int     `env:"BATCH_SIZE,default=8"`
	HiddenSize      int     `env:"HIDDEN_SIZE,default=8"`
	LearningRate    float64 `env:"LEARNING_RATE,default=0.001"`
	NumEpochs       int     `env:"NUM_EPOCHS,default=1000"`
	ReportEvery     int     `env:"REPORT_EVERY,default=100"`
	Seed            *int64  `env:"SEED"`
}

func (c Config) Hyperparameters() trainer.Hyperparameters {
	return trainer.Hyperparameters{
		BatchSize:    c.BatchSize,
		HiddenSize:   c.HiddenSize,
		LearningRate: c.LearningRate,
		NumEpochs:    c.NumEpochs,
		ReportEvery:  c.ReportEvery,
		Seed:         c.Seed,
	}
}
