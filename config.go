package main

const ENV_PORT = "port"
const ENV_DATABASE_NAME = "database_name"
const ENV_LOGGING_DATABASE_PATH = "logging_database_path"
const ENV_JWT_KEY = "jwt_key"
const ENV_TWITTER_API_KEY = "twitter_api_key"
const ENV_TWITTER_API_BASE_URL = "twitter_api_base_url"
const ENV_PROXY_DSN = "proxy_dsn"
const ENV_TELEGRAM_API_KEY = "telegram_api_key"
const ENV_TELEGRAM_ADMIN_CHAT_ID = "tg_admin_chat_id"
const ENV_IMPORT_CSV_PATH = "import_csv_path"

// Default listing window when page/limit are absent or malformed
const DEFAULT_PAGE = 1
const DEFAULT_LIMIT = 10

// Name of the session cookie set on login
const TOKEN_COOKIE = "token"

// Gin context key under which the authenticator stores the principal id
const CONTEXT_USER_ID = "userId"

// Request log retention for the cleanup scheduler, days
const LOG_RETENTION_DAYS = 30
