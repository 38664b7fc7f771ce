// Negotiation of HTTP compression codings.
/*
Spancontent's goal is to give Spanreed services and clients one shared
implementation of compression content negotiation, so that the choice of which
coding a response body is compressed with is made the same way everywhere.

Specific objectives

1. Clients can advertise the codings they understand, with relative quality
weights, and get back whichever acceptable coding the server can produce.

2. Service developers do not have to hand-parse the Accept-Encoding header or
re-implement RFC 7231 section 5.3.4 ordering rules per service.

3. Negotiation failure is communicated with the ecosystem's shared error model
so that a 406 response looks the same from every service.
*/
package content
