package models

// ContactMessage is a message submitted through the public contact form.
// Created anonymously, read and deleted by admins.
type ContactMessage struct {
	ID        ID     `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"description"`
}
