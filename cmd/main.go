package main

import "github.com/adanyl0v/go-task-tracker/internal/app"

func main() {
	a := app.New()
	a.InitDefaultLogger()
	a.MustReadEnv()
	a.MustInitApplicationLogger()

	a.InitPostgres()

	a.MustListenAndServeHTTP()
}
