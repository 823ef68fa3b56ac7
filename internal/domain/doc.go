// Package domain defines the core business entities of the task API:
// users with roles and the tasks they own. Entities validate themselves;
// persistence and caching concerns live elsewhere.
package domain
