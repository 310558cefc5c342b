package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
var migrationsSQL = map[int]string{
	1: migrationV1SeasonalSteps,
	2: migrationV2SeedSeasonalSteps,
}

// migrationV1SeasonalSteps creates the six-step table.
//
// Each row is one of the six seasonal steps of the year. main_qi holds the
// Chinese label of the fixed host qi for that step; it never depends on the
// year being displayed.
const migrationV1SeasonalSteps = `
CREATE TABLE IF NOT EXISTS seasonal_steps (
    step INTEGER PRIMARY KEY CHECK (step BETWEEN 1 AND 6),

    -- Display label, e.g. "初之气"
    name TEXT NOT NULL,

    -- Bounding solar terms, e.g. "立春" / "清明"
    start_term TEXT NOT NULL,
    end_term TEXT NOT NULL,

    main_qi TEXT NOT NULL,

    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

const migrationV2SeedSeasonalSteps = `
INSERT OR IGNORE INTO seasonal_steps (step, name, start_term, end_term, main_qi) VALUES
    (1, '初之气', '立春', '清明', '厥阴风木'),
    (2, '二之气', '清明', '芒种', '少阴君火'),
    (3, '三之气', '芒种', '立秋', '少阳相火'),
    (4, '四之气', '立秋', '寒露', '太阴湿土'),
    (5, '五之气', '寒露', '大雪', '阳明燥金'),
    (6, '终之气', '大雪', '立春', '太阳寒水');
`
