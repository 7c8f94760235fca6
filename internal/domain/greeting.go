package domain

// Greeting is the fixed payload served on GET /.
const Greeting = "Hello, World!"
