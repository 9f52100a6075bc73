package config

// SERVER_YML is written to dev/config/server.yml when running with --dev & no config exists
const SERVER_YML = `
dogcare:
  secretKey: "dev-secret-key"
  listener:
    port: 3000
  cron:
    timeZone: "America/Toronto"

sqlite:
  passPhrase: passphrase

google:
  storage:
    bucket: "dogcare"
    prefix: "dogcare-dev"
    sqliteBackupSchedule: "*/30 * * * *"
    enableSqliteBackupAndSync: false
  applicationCredentials:
`
