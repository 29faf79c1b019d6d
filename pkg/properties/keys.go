/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package properties

const (
	BaseURL    = "base.url"
	SwaggerURL = "swagger.url"

	TestThreadCount = "test.thread.count"
	TestTimeout     = "test.timeout"
	TestRetryCount  = "test.retry.count"

	DefaultSupervisorLogin = "default.supervisor.login"
	DefaultAdminLogin      = "default.admin.login"

	UserMinAge        = "test.user.min.age"
	UserMaxAge        = "test.user.max.age"
	PasswordMinLength = "test.password.min.length"
	PasswordMaxLength = "test.password.max.length"

	LoggingLevel = "logging.level"

	RequestLogging  = "logging.requests"
	ResponseLogging = "logging.responses"
)

// Service conventions that differ between deployments of the Player service.
// Suites and the fake service both read these rather than hard coding one.
const (
	DuplicateLoginStatus = "contract.duplicate.login.status"
	GetMissingStatus     = "contract.get.missing.status"
	DeleteMissingStatus  = "contract.delete.missing.status"
	DeleteSuccessStatus  = "contract.delete.success.status"
)
