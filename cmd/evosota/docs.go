package main

// General API documentation for swaggo, used by the serve command.
//
// @title           evosota preview API
// @version         1.0
// @description     Read-only preview of generated VLA and dexterous manipulation leaderboards.
//
// @contact.name   Evo-SOTA maintainers
// @contact.url    https://github.com/MINT-SJTU/Evo-SOTA.io
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
