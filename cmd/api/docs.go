package main

// @title Driving Lesson Hunter API
// @version 1.0.0
// @description Find practical driving test centres near a UK postcode
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:8080
// @BasePath /
