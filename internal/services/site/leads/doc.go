// Package leads validates, logs and persists lead-generation submissions:
// contact messages, career applications, product and service enquiries, and
// enquiry list submissions.
package leads
